// Package dispatch contains the decision engine and process dispatcher.
//
// One invocation is a single synchronous pipeline: inspect the script,
// resolve its association, detect the launch context, decide the operation,
// expand the argv, start the process. Console invocations always execute
// and keep terminal ownership so interactive scripts behave like native
// console programs; GUI invocations may prompt, and their children are
// started detached so the dispatcher can exit immediately.
package dispatch
