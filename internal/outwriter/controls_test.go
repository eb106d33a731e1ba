package outwriter

import (
	"bytes"
	"testing"

	"github.com/huangsam/housescope/schema"
	"github.com/stretchr/testify/assert"
)

func TestTerminalControls(t *testing.T) {
	var buf bytes.Buffer
	c := NewTerminalControls(&buf, false)

	c.SetSelected(schema.Period1950, true)
	assert.True(t, c.Selected(schema.Period1950))
	assert.Contains(t, buf.String(), "Period:  1900-1950  [1950-2000]  2000-2050 ")

	buf.Reset()
	c.SetSelected(schema.Period1950, false)
	assert.False(t, c.Selected(schema.Period1950))
	assert.Empty(t, buf.String(), "deselection is silent")

	c.SetThresholdText("300000")
	assert.Equal(t, "300000", c.Threshold())
	assert.Contains(t, buf.String(), "Max price: 300000")
}

func TestTerminalControlsColors(t *testing.T) {
	var buf bytes.Buffer
	c := NewTerminalControls(&buf, true)
	c.SetSelected(schema.Period2000, true)
	assert.Contains(t, c.Buttons(), "[2000-2050]")
}

func TestMemoryPanel(t *testing.T) {
	p := &MemoryPanel{}
	lines := []string{"Address: 123 Main St"}
	p.SetContent(lines)
	p.Show()
	assert.True(t, p.Visible)
	assert.Equal(t, lines, p.Lines)

	lines[0] = "changed"
	assert.Equal(t, "Address: 123 Main St", p.Lines[0], "content is copied")

	p.Hide()
	assert.False(t, p.Visible)
}

func TestTerminalPanel(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPanel(&buf)

	p.Hide()
	assert.Empty(t, buf.String(), "hiding a hidden panel prints nothing")

	p.SetContent([]string{"Address: 123 Main St", "Price: $300000"})
	p.Show()
	assert.True(t, p.Visible)
	assert.Contains(t, buf.String(), "123 Main St")
	assert.Contains(t, buf.String(), "$300000")

	buf.Reset()
	p.Hide()
	assert.False(t, p.Visible)
	assert.Contains(t, buf.String(), "Details hidden")
}
