// Package errors provides coded, actionable diagnostics for hyper tooling.
//
// Markup errors carry a short code (H001 and up). Describe turns any such
// error into a Diagnostic with an explanation, a hint and a documentation
// link that the CLI prints to the terminal.
//
// # Categories
//
//   - markup: tree construction and rendering failures
//   - config: invalid or unreadable hyper.json / hyper.yaml
//   - cli: command line usage errors
//
// # Usage
//
//	if _, err := markup.Render(page); err != nil {
//	    fmt.Fprint(os.Stderr, errors.Describe(err).Format())
//	}
//	// ERROR H005: Context value not provided
//	//
//	//   context value for "theme" does not exist, requested by main.header()
//	//
//	//   A consumer was rendered without an enclosing provider ...
//	//
//	//   Hint: Wrap the subtree in theme.Provider(...) or give the context a default.
//	//
//	//   Learn more: https://hyper.dev/docs/errors/H005
package errors
