// Package listview holds the paginated list state each console session keeps
// per entity: the current page, the fetch phase, the busy flag of an in-flight
// action and the last notice to show.
package listview
