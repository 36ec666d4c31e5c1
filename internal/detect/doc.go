// Package detect guesses which team a project belongs to when the user does
// not name one. It consults the project's active-team registry first and then
// falls back to cheap heuristics over package.json and the source layout.
// Failing to detect is a normal outcome, never an error.
package detect
