package imageio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// OutputPath derives an output file name from input when the user gave none:
// <dir>/<stem>_<suffix><ext>, or with a timestamp appended if that file exists.
// An empty dir means the current directory.
func OutputPath(dir, input, suffix, ext string, now time.Time) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, suffix, ext))
	if _, err := os.Stat(name); err != nil {
		return name
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%s%s", stem, suffix, now.Format("2006-01-02-15-04-05"), ext))
}
