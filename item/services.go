package item

import "github.com/hupe1980/lootsort/core"

// Services bundles the host collaborators an Entry derives attributes
// from. Any field may be nil:
//   - without a Resolver no ground handle resolves
//   - without an Oracle nothing is stolen
//   - without a Pickpocket estimator the chance is 0
//   - without a Museum tracker every museum flag is false
type Services struct {
	Resolver   core.ObjectResolver
	Oracle     core.OwnershipOracle
	Pickpocket core.PickpocketEstimator
	Museum     core.MuseumTracker
}
