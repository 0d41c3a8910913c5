// Package datename infers a capture date from a media file name.
//
// Extraction is an ordered table of recognizer rules ([Rules]); the first
// rule whose pattern matches the file name yields a [Token]. Tokens are
// normalized to '-' separators and parsed into a local [time.Time] with
// second precision by [Parse].
//
// When a name contains several date-like runs, the leftmost match of the
// first matching rule is captured. Names with two different dates therefore
// resolve to whichever comes first; no attempt is made to pick the "right" one.
package datename
