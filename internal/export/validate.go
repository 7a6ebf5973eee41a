package export

import (
	"fmt"
	"strings"
)

// forbiddenFilenameChars are the characters an export filename may never
// contain, along with spaces and periods. The optional output suffix is set
// aside before the check so "out.tif" stays legal.
const forbiddenFilenameChars = `<>:"/\|?*. `

// Validate checks every grouped entry against the export grammar. It fails
// fast on the first violated rule so construction never starts from an
// ambiguous specification. Rules run per entry in a fixed order: the flag
// must be recognized, the argument count must match the flag's class, the
// output filename must be globally unique (first seen wins), and the
// filename must be free of forbidden characters.
func Validate(entries EntrySet) error {
	seen := make(map[string]struct{}, entries.Len())

	for _, flag := range entries.Flags() {
		args := entries.Args(flag)

		spec, ok := flagTable[flag]
		if !ok {
			return fmt.Errorf("unknown export type %q", flag)
		}

		switch spec.class {
		case classScalar:
			if len(args) != 2 && len(args) != 3 {
				return fmt.Errorf("incorrect number of arguments for %q", flag)
			}
		case classMap:
			if len(args) != 2 {
				return fmt.Errorf("incorrect number of arguments for %q", flag)
			}
		}

		name := args[0]
		if _, dup := seen[name]; dup {
			return fmt.Errorf("the export filename %q is used more than once", name)
		}
		seen[name] = struct{}{}

		if err := checkFilename(flag, name); err != nil {
			return err
		}
	}

	return nil
}

// checkFilename enforces the filename grammar for one entry: after setting
// aside one optional output suffix, the remainder must be non-empty and free
// of forbidden characters, spaces and periods.
func checkFilename(flag, name string) error {
	base := strings.TrimSuffix(name, OutputSuffix)
	if base == "" {
		return fmt.Errorf("empty export filename for %q", flag)
	}
	if i := strings.IndexAny(base, forbiddenFilenameChars); i >= 0 {
		return fmt.Errorf("invalid character %q in export filename %q", base[i], name)
	}
	return nil
}
