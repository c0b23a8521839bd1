package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// ScratchSet names the three files one evaluation may produce.
type ScratchSet struct {
	Input    string
	Output   string
	Partials string
}

// ScratchFileAdapter generates and removes the temporary XML files of a
// component. File names are salted with a microsecond timestamp so
// repeated evaluations of the same named component never collide within
// a process; concurrent evaluations of one instance are not supported.
type ScratchFileAdapter struct {
	Clock func() time.Time
}

func NewScratchFileAdapter() ScratchFileAdapter {
	return ScratchFileAdapter{Clock: time.Now}
}

// GenerateNames produces the salted input/output/partials paths for one
// evaluation of the named component.
func (a ScratchFileAdapter) GenerateNames(dataFolder string, component string) ScratchSet {
	now := a.Clock()
	salt := fmt.Sprintf("%s%06d", now.Format("20060102150405"), now.Nanosecond()/1000)
	return ScratchSet{
		Input:    filepath.Join(dataFolder, fmt.Sprintf("%s_in_%s.xml", component, salt)),
		Output:   filepath.Join(dataFolder, fmt.Sprintf("%s_out_%s.xml", component, salt)),
		Partials: filepath.Join(dataFolder, fmt.Sprintf("%s_partials_%s.xml", component, salt)),
	}
}

// Remove deletes scratch files best-effort. A file that is already gone
// is not an error; any other failure is logged and dropped.
func (a ScratchFileAdapter) Remove(paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Debug().Str("path", path).Err(err).Msg("scratch file removal failed")
		}
	}
}
