// Package prompt drives the interactive console that collects everything
// the optimiser run needs beyond flags: the CSV path, k, the rendering
// style for action paths, and whether (and where) to export results.
//
// Every Ask* function takes a *readline.Instance, which supplies both the
// prompt text and the user's input; warnings about rejected input are
// written through runlog.
package prompt
