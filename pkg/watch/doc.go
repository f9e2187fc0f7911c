// Package watch re-runs analysis when a feature model document changes on
// disk. It wraps fsnotify with debouncing so editor save sequences (write,
// rename, chmod) trigger a single re-analysis instead of a storm.
package watch
