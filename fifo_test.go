/*------------------------------------------------------------------------------
* gnsscore unit test driver : byte FIFO
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_fifo_size(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(gnsscore.NewFifo(0))
	assert.Nil(gnsscore.NewFifo(3))
	assert.Nil(gnsscore.NewFifo(100))
	assert.NotNil(gnsscore.NewFifo(1))
	assert.NotNil(gnsscore.NewFifo(64))
}

func Test_fifo_read_write(t *testing.T) {
	assert := assert.New(t)

	f := gnsscore.NewFifo(8)
	assert.EqualValues(0, f.Length())
	assert.EqualValues(8, f.Space())

	assert.EqualValues(5, f.Write([]uint8{1, 2, 3, 4, 5}))
	assert.EqualValues(5, f.Length())
	assert.EqualValues(3, f.Space())

	/* writes past the free space are truncated */
	assert.EqualValues(3, f.Write([]uint8{6, 7, 8, 9, 10}))
	assert.EqualValues(8, f.Length())
	assert.EqualValues(0, f.Space())
	assert.EqualValues(0, f.Write([]uint8{11}))

	var out [4]uint8
	assert.EqualValues(4, f.Read(out[:]))
	assert.Equal([4]uint8{1, 2, 3, 4}, out)
	assert.EqualValues(4, f.Length())

	assert.EqualValues(4, f.Read(out[:]))
	assert.Equal([4]uint8{5, 6, 7, 8}, out)
	assert.EqualValues(0, f.Length())

	/* empty FIFO reads nothing */
	assert.EqualValues(0, f.Read(out[:]))
}

func Test_fifo_peek_remove(t *testing.T) {
	assert := assert.New(t)

	f := gnsscore.NewFifo(8)
	f.Write([]uint8{10, 20, 30})

	var out [8]uint8
	assert.EqualValues(3, f.Peek(out[:]))
	assert.Equal(uint8(10), out[0])
	assert.Equal(uint8(30), out[2])
	/* peeking leaves the data in place */
	assert.EqualValues(3, f.Length())

	assert.EqualValues(2, f.Remove(2))
	assert.EqualValues(1, f.Length())
	/* removing more than is buffered discards what is there */
	assert.EqualValues(1, f.Remove(5))
	assert.EqualValues(0, f.Length())
}

func Test_fifo_wraparound(t *testing.T) {
	assert := assert.New(t)

	f := gnsscore.NewFifo(8)

	/* advance the indices so the next write straddles the buffer end */
	f.Write([]uint8{0, 0, 0, 0, 0, 0})
	var scratch [6]uint8
	f.Read(scratch[:])

	in := []uint8{1, 2, 3, 4, 5, 6, 7}
	assert.EqualValues(7, f.Write(in))

	var out [7]uint8
	assert.EqualValues(7, f.Read(out[:]))
	assert.Equal(in, out[:])
}

func Test_fifo_conservation(t *testing.T) {
	assert := assert.New(t)

	/* push a long sequence through in mismatched chunk sizes and check it
	 * comes out intact and in order */
	f := gnsscore.NewFifo(16)

	var src, dst []uint8
	for i := 0; i < 1000; i++ {
		src = append(src, uint8(i*7))
	}

	writePos := 0
	for len(dst) < len(src) {
		if writePos < len(src) {
			end := writePos + 5
			if end > len(src) {
				end = len(src)
			}
			writePos += int(f.Write(src[writePos:end]))
		}
		var chunk [3]uint8
		n := f.Read(chunk[:])
		dst = append(dst, chunk[:n]...)
	}
	assert.Equal(src, dst)
}
