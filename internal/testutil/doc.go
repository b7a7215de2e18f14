// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing item objects and their base forms. They are
// not intended for production usage.
package testutil
