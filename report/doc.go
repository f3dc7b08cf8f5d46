// Package report turns a topk.OptimalResults into output: a CSV file on disk, a
// styled terminal table, or both. Every record is rank, percentage return,
// and a rendered action path; the rendering style (short or verbose) is
// supplied by the caller via prompt.RenderStyle.
package report
