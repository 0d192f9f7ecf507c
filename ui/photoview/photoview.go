// Package photoview provides the area that shows the two photos of a pair.
package photoview

import (
	"errors"
	"fmt"
	"image"

	"photo-compare/internal/photo"
	"photo-compare/internal/review"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// MessageNoMedia replaces a photo whose row has no image path.
const MessageNoMedia = "No media file"

// Item is what was drawn for one row of the current pair.
type Item struct {
	Row  *review.Row
	Path string // resolved path, empty when the row has none

	// Image is the decoded photo and Scaled its on-screen bitmap. Both are
	// nil when Message is set. They stay referenced until the next render.
	Image  image.Image
	Scaled *image.RGBA

	Message string
}

// View draws photos or substitution messages into a container whose
// contents are replaced on every render.
type View struct {
	baseDir string
	surface func() fyne.Size
	load    func(string) (image.Image, error)
	log     logrus.FieldLogger

	box   *fyne.Container
	items []Item
}

// New creates a view resolving image paths against baseDir. surface reports
// the display size; each photo gets a third of it in both directions.
func New(baseDir string, surface func() fyne.Size, log logrus.FieldLogger) *View {
	return &View{
		baseDir: baseDir,
		surface: surface,
		load:    photo.Load,
		log:     log,
		box:     container.NewHBox(),
	}
}

// Container returns the view's canvas object for layout.
func (v *View) Container() fyne.CanvasObject {
	return container.NewCenter(v.box)
}

// Items returns what the last render drew.
func (v *View) Items() []Item {
	return v.items
}

// Render clears the area and draws each row of p.
func (v *View) Render(p review.Pair) {
	size := v.surface()
	w, h := int(size.Width/3), int(size.Height/3)

	items := make([]Item, 0, len(p))
	objects := make([]fyne.CanvasObject, 0, len(p))
	for _, row := range p {
		item := v.loadRow(row, w, h)
		items = append(items, item)
		objects = append(objects, v.draw(item, w, h))
	}
	v.items = items
	v.box.Objects = objects
	v.box.Refresh()
}

// ShowMessage clears the area and shows a single line of text.
func (v *View) ShowMessage(msg string) {
	v.items = nil
	v.box.Objects = []fyne.CanvasObject{widget.NewLabel(msg)}
	v.box.Refresh()
}

// Distance returns the perceptual-hash distance between the two photos of
// the last render. ok is false unless both photos were decoded.
func (v *View) Distance() (distance int, ok bool) {
	if len(v.items) != 2 || v.items[0].Image == nil || v.items[1].Image == nil {
		return 0, false
	}
	d, err := photo.Distance(v.items[0].Image, v.items[1].Image)
	if err != nil {
		v.log.WithError(err).Warn("failed to compare photos")
		return 0, false
	}
	return d, true
}

func (v *View) loadRow(row *review.Row, w, h int) Item {
	item := Item{Row: row, Path: photo.Resolve(v.baseDir, row.ImagePath())}
	if item.Path == "" {
		item.Message = MessageNoMedia
		return item
	}

	img, err := v.load(item.Path)
	if err != nil {
		item.Message = messageFor(item.Path, err)
		v.log.WithFields(logrus.Fields{
			"caseid": row.CaseID(),
			"path":   item.Path,
		}).WithError(err).Warn("photo unavailable")
		return item
	}
	item.Image = img
	item.Scaled = photo.Scale(img, w, h)
	return item
}

func messageFor(path string, err error) string {
	var le *photo.LoadError
	switch {
	case errors.Is(err, photo.ErrNoMedia):
		return MessageNoMedia
	case errors.As(err, &le) && le.Decode:
		return fmt.Sprintf("Cannot decode image: %s", path)
	default:
		return fmt.Sprintf("Image not found: %s", path)
	}
}

func (v *View) draw(item Item, w, h int) fyne.CanvasObject {
	if item.Scaled == nil {
		return widget.NewLabel(item.Message)
	}
	img := fynecanvas.NewImageFromImage(item.Scaled)
	img.FillMode = fynecanvas.ImageFillStretch
	img.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	return img
}
