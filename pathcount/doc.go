// Package pathcount enumerates the number of distinct action sequences
// reachable over a horizon of M months given a tenor list, independent of
// any particular return matrix's values (a sequence is "distinct" by its
// shape: which months are buys of which tenor versus waits).
//
// The recurrence is P(m) = sum over every tenor t (plus the implicit wait
// tenor of 1) of P(m-t), with P(0)=1 and P(m-t)=0 for t>m. Arithmetic
// starts in int64 and promotes, once, to float64 when the next addition
// would overflow, continuing in float64 for the remainder of the run.
package pathcount
