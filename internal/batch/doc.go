// Package batch reads source word lists and slices them into the fixed-size
// request batches sent to PanLex. It also holds the symbol clean-up pass that
// keeps tokens PanLex cannot answer out of the request payloads.
package batch
