package count

import "strings"

// FieldHandler is invoked once per manifest field, in field order. A
// non-nil return stops the iteration and propagates to the caller.
type FieldHandler func(filename string) error

// ForEachField splits a CSV manifest into filenames and applies the
// handler to each, left to right. Every call completes before the next
// field is visited; there is no buffering or reordering. Fields are
// whitespace-trimmed. Empty fields (consecutive or trailing delimiters)
// are not skipped: they reach the handler as zero-length filenames, which
// the loader then rejects. The manifest string is never modified; fields
// are substrings sharing its backing array.
func ForEachField(manifest string, handler FieldHandler) error {
	for _, field := range strings.Split(manifest, csvDelimiter) {
		if err := handler(strings.TrimSpace(field)); err != nil {
			return err
		}
	}
	return nil
}

// MergeFiles loads every file listed in the manifest and concatenates
// their content in list order with no inserted separator, preserving each
// file's exact bytes. At most one file's content is retained while the
// merge runs: each loaded buffer is appended to the accumulator and
// dropped before the next load. Any single load failure aborts the whole
// merge with that error; there is no best-effort partial result.
func MergeFiles(loader *Loader, manifest string) (string, error) {
	var merged strings.Builder
	err := ForEachField(manifest, func(filename string) error {
		file, err := loader.Load(filename)
		if err != nil {
			return err
		}
		merged.WriteString(file.Text())
		return nil
	})
	if err != nil {
		return "", err
	}
	return merged.String(), nil
}
