package model

type ColourID string

type Colour interface {
	WithID[ColourID]

	Name() string
}

type ReadOnlyColour struct {
	id   ColourID
	name string
}

// ID implements Colour.
func (c *ReadOnlyColour) ID() ColourID {
	return c.id
}

// Name implements Colour.
func (c *ReadOnlyColour) Name() string {
	return c.name
}

func NewReadOnlyColour(id ColourID, name string) *ReadOnlyColour {
	return &ReadOnlyColour{
		id:   id,
		name: name,
	}
}

var _ Colour = &ReadOnlyColour{}

type ColourDraft struct {
	name string
}

func (d ColourDraft) Name() string {
	return d.name
}

func NewColourDraft(name string) (ColourDraft, error) {
	name, err := requireField("name", "Colour name required", name)
	if err != nil {
		return ColourDraft{}, err
	}

	return ColourDraft{name: name}, nil
}
