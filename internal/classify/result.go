package classify

import (
	"errors"
	"strings"
)

// Result is the folder path a file is assigned to, at most three levels deep.
type Result struct {
	Primary        string `json:"primary"`
	Subcategory    string `json:"subcategory,omitempty"`
	SubSubcategory string `json:"sub_subcategory,omitempty"`
}

// Segments returns the non-empty path segments in order.
func (r Result) Segments() []string {
	segments := make([]string, 0, 3)
	if r.Primary != "" {
		segments = append(segments, r.Primary)
	}
	if r.Subcategory != "" {
		segments = append(segments, r.Subcategory)
		if r.SubSubcategory != "" {
			segments = append(segments, r.SubSubcategory)
		}
	}
	return segments
}

// Display joins the segments with " / ".
func (r Result) Display() string {
	return strings.Join(r.Segments(), " / ")
}

func (r Result) String() string {
	return r.Display()
}

// Validate checks the structural invariants of a result.
func (r Result) Validate() error {
	if strings.TrimSpace(r.Primary) == "" {
		return errors.New("classification has no primary category")
	}
	if r.SubSubcategory != "" && r.Subcategory == "" {
		return errors.New("classification has a sub-subcategory without a subcategory")
	}
	return nil
}
