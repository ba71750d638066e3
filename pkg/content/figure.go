package content

import (
	"strconv"

	"github.com/texweave/texweave/pkg/errors"
)

// Figure is an included graphic with a caption, rendered as a figure
// environment around \includegraphics.
type Figure struct {
	filename string
	caption  string
	scale    float64
}

// NewFigure returns a figure for filename at scale 1.
func NewFigure(filename, caption string) *Figure {
	return &Figure{filename: filename, caption: caption, scale: 1}
}

// SetScale changes the graphic scale. Scales must be positive.
func (f *Figure) SetScale(scale float64) error {
	if !(scale > 0) {
		return errors.New(errors.ErrCodeInvalidArgument, "figure scale must be positive, got %v", scale)
	}
	f.scale = scale
	return nil
}

// Filename returns the graphic path.
func (f *Figure) Filename() string { return f.filename }

// Caption returns the caption text.
func (f *Figure) Caption() string { return f.caption }

// Scale returns the scale factor.
func (f *Figure) Scale() float64 { return f.scale }

// ScaleString formats the scale the way it is written into the document.
func (f *Figure) ScaleString() string {
	return strconv.FormatFloat(f.scale, 'g', -1, 64)
}

func (*Figure) Kind() Kind { return KindFigure }
func (*Figure) node()      {}

// Listing imports a source file through \lstinputlisting.
type Listing struct {
	filename string
	language string
}

// NewListing returns a listing of filename highlighted as language.
func NewListing(filename, language string) *Listing {
	return &Listing{filename: filename, language: language}
}

// Filename returns the listed file.
func (l *Listing) Filename() string { return l.filename }

// Language returns the listings language name.
func (l *Listing) Language() string { return l.language }

func (*Listing) Kind() Kind { return KindListing }
func (*Listing) node()      {}
