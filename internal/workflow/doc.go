// Package workflow resolves the locations an installation works with: the
// workflow root holding skills and team profiles, the project root being
// configured, and the install target.
package workflow
