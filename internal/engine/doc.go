// Package engine holds the scoring and progression rules of Vital Quest.
//
// Every function here is pure: it reads the values it is handed, returns a
// newly built result and never touches storage, the network or globals. The
// functions are safe to call concurrently. Callers own persistence and pass
// snapshots in; UserProgress is the only state that rolls over between calls
// and it is returned rather than mutated.
package engine
