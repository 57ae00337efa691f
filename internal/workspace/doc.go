// Package workspace provides the running-application directory consumed by
// target selection and the list view. Records are rebuilt on every query
// and carry no identity across queries.
package workspace
