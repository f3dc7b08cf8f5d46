package prompt

import "errors"

// ErrAborted is returned by any Ask* function when the user escapes the
// prompt (Ctrl+C or Ctrl+D). Callers should treat this as a normal,
// zero-exit-code termination per the program's escape-is-success contract.
var ErrAborted = errors.New("prompt: aborted by user")

// ErrInvalidK is returned by AskK when input cannot be parsed as k >= 1
// after the configured number of retries is exhausted.
var ErrInvalidK = errors.New("prompt: could not read a valid k")

// maxRetries bounds how many malformed inputs AskK and AskCSVPath will
// tolerate before giving up and returning an error instead of looping
// forever against a non-interactive or broken stdin.
const maxRetries = 10

// kSoftWarningThreshold is the point above which AskK logs a soft warning
// about the memory and time cost of a very large k, without rejecting it.
const kSoftWarningThreshold = 1_000_000
