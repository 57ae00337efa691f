package workspace

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"axwarm/internal/ax"
)

// App is one running application instance.
type App struct {
	Name     string
	PID      int
	BundleID string
}

// ErrUnavailable reports that the platform workspace service could not be
// queried. The tool cannot proceed without a process list, so callers treat
// this as fatal.
var ErrUnavailable = errors.New("workspace: application directory unavailable")

// Directory enumerates running applications through the accessibility
// binding's workspace service.
type Directory struct {
	binding ax.Binding
}

// NewDirectory constructs a directory over the provided binding.
func NewDirectory(binding ax.Binding) *Directory {
	return &Directory{binding: binding}
}

// ListRunning returns all current application instances that have a
// resolvable display name. Order is whatever the platform reports; callers
// needing a deterministic listing sort with SortByName.
func (d *Directory) ListRunning() ([]App, error) {
	infos, err := d.binding.RunningApplications()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	apps := make([]App, 0, len(infos))
	for _, info := range infos {
		if strings.TrimSpace(info.Name) == "" {
			continue
		}
		apps = append(apps, App{Name: info.Name, PID: info.PID, BundleID: info.BundleID})
	}
	return apps, nil
}

// SortByName orders apps case-insensitively by display name, with PID as the
// tie-breaker so multi-process applications list stably.
func SortByName(apps []App) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(apps, func(i, j int) bool {
		if cmp := c.CompareString(apps[i].Name, apps[j].Name); cmp != 0 {
			return cmp < 0
		}
		return apps[i].PID < apps[j].PID
	})
}
