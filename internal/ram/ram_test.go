package ram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

func TestRAM(t *testing.T) {
	r := NewRAM(0xFF80, 0x7F)
	r.Write(0xFF80, 0x01)
	r.Write(0xFFFE, 0x02)

	assert.Equal(t, uint8(0x01), r.Read(0xFF80))
	assert.Equal(t, uint8(0x02), r.Read(0xFFFE))
	assert.Equal(t, uint8(0x00), r.Read(0xFF90))

	s := types.NewState()
	r.Save(s)

	restored := NewRAM(0xFF80, 0x7F)
	restored.Load(types.StateFromBytes(s.Bytes()))
	assert.Equal(t, uint8(0x02), restored.Read(0xFFFE))
}
