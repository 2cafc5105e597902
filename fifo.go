/*------------------------------------------------------------------------------
* fifo.go : lock-free single-producer single-consumer byte FIFO
*
* notes  : the ring buffer capacity must be a power of two. Read and write
*          indices increase monotonically and are reduced modulo the capacity
*          only when addressing the buffer, so length is always
*          write_index-read_index in uint32 arithmetic. One goroutine may call
*          the producer side (Write) while another calls the consumer side
*          (Read/Peek/Remove) without additional locking.
*-----------------------------------------------------------------------------*/
package gnsscore

import "sync/atomic"

// Fifo is a byte FIFO over a power-of-two ring buffer.
type Fifo struct {
	readIndex  atomic.Uint32
	writeIndex atomic.Uint32
	buffer     []uint8
}

// NewFifo returns a FIFO over a buffer of the given size, which must be a
// power of two.
func NewFifo(size uint32) *Fifo {
	if size == 0 || size&(size-1) != 0 {
		Trace(1, "NewFifo: size %d is not a power of two\n", size)
		return nil
	}
	return &Fifo{buffer: make([]uint8, size)}
}

func (f *Fifo) indexMask() uint32 {
	return uint32(len(f.buffer)) - 1
}

// Length returns the number of bytes that may be read from the FIFO. The
// consumer sees a lower bound, the producer an upper bound.
func (f *Fifo) Length() uint32 {
	return f.writeIndex.Load() - f.readIndex.Load()
}

// Space returns the number of bytes that may be written to the FIFO. The
// producer sees a lower bound, the consumer an upper bound.
func (f *Fifo) Space() uint32 {
	return uint32(len(f.buffer)) - f.Length()
}

// Read copies up to len(buffer) bytes out of the FIFO and removes them.
// Consumer side.
func (f *Fifo) Read(buffer []uint8) uint32 {
	readLength := f.Peek(buffer)
	if readLength > 0 {
		readLength = f.Remove(readLength)
	}
	return readLength
}

// Peek copies up to len(buffer) bytes out of the FIFO without removing them.
// Consumer side.
func (f *Fifo) Peek(buffer []uint8) uint32 {
	fifoLength := f.Length()

	readLength := uint32(len(buffer))
	if readLength > fifoLength {
		readLength = fifoLength
	}
	if readLength > 0 {
		readIndexMasked := f.readIndex.Load() & f.indexMask()
		if readIndexMasked+readLength <= uint32(len(f.buffer)) {
			/* one contiguous block */
			copy(buffer, f.buffer[readIndexMasked:readIndexMasked+readLength])
		} else {
			/* two contiguous blocks */
			copyLenA := uint32(len(f.buffer)) - readIndexMasked
			copy(buffer, f.buffer[readIndexMasked:])
			copy(buffer[copyLenA:], f.buffer[:readLength-copyLenA])
		}
	}
	return readLength
}

// Remove discards up to length bytes from the FIFO and returns the number
// discarded. Consumer side.
func (f *Fifo) Remove(length uint32) uint32 {
	fifoLength := f.Length()

	readLength := length
	if readLength > fifoLength {
		readLength = fifoLength
	}
	if readLength > 0 {
		f.readIndex.Add(readLength)
	}
	return readLength
}

// Write copies up to len(buffer) bytes into the FIFO and returns the number
// written. Producer side.
func (f *Fifo) Write(buffer []uint8) uint32 {
	fifoSpace := f.Space()

	writeLength := uint32(len(buffer))
	if writeLength > fifoSpace {
		writeLength = fifoSpace
	}
	if writeLength > 0 {
		writeIndexMasked := f.writeIndex.Load() & f.indexMask()
		if writeIndexMasked+writeLength <= uint32(len(f.buffer)) {
			/* one contiguous block */
			copy(f.buffer[writeIndexMasked:], buffer[:writeLength])
		} else {
			/* two contiguous blocks */
			copyLenA := uint32(len(f.buffer)) - writeIndexMasked
			copy(f.buffer[writeIndexMasked:], buffer[:copyLenA])
			copy(f.buffer, buffer[copyLenA:writeLength])
		}
		/* the index moves only after the data is in place */
		f.writeIndex.Add(writeLength)
	}
	return writeLength
}
