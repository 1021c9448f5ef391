// Package design implements the policies that turn a worker's ordered steps
// into graph topology.
//
// Every variant satisfies the same Rule contract and differs only in fan-out
// and fan-in policy: waterfall chains one default technique per step, contest
// cross-products every technique of consecutive steps, lean filters the menu
// before wiring, pert weights edges by estimated cost, and so on. Rules are
// selected by name through an explicit Registry owned by the caller — there
// is no ambient global table.
package design
