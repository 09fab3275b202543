package nbt

import (
	"encoding/binary"
	"io"
	"math"
)

func writeFloat32(w io.Writer, v float32) error {
	return writeInt32(w, int32(math.Float32bits(v)))
}

func readFloat32(r io.Reader) (float32, error) {
	n, err := readInt32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(n)), nil
}

func writeFloat64(w io.Writer, v float64) error {
	return writeInt64(w, int64(math.Float64bits(v)))
}

func readFloat64(r io.Reader) (float64, error) {
	n, err := readInt64(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(n)), nil
}

func writeTagByte(w io.Writer, t Tag) error {
	_, err := w.Write([]byte{byte(t)})
	return err
}

func readTagByte(r io.Reader) (Tag, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	t := Tag(b[0])
	if t > TagLongArray {
		return 0, ErrUnknownTag
	}
	return t, nil
}

// writeNameString and writeCesu8String both write a u16 big-endian byte
// length followed by CESU-8 bytes; they are named separately because a
// Compound's per-entry name and a TagString body occupy the same shape but
// different call sites.
func writeNameString(w io.Writer, s string) error { return writeCesu8String(w, s) }
func readNameString(r io.Reader) (string, error)   { return readCesu8String(r) }

func writeCesu8String(w io.Writer, s string) error {
	b := utf8ToCesu8(s)
	if len(b) > 0xffff {
		return ErrStringTooLarge
	}
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(b)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readCesu8String(r io.Reader) (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return cesu8ToUTF8(buf), nil
}

func writeBody(w io.Writer, v Value) error {
	switch v.Tag {
	case TagEnd:
		return nil
	case TagByte:
		_, err := w.Write([]byte{byte(v.Byte)})
		return err
	case TagShort:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(v.Short))
		_, err := w.Write(b[:])
		return err
	case TagInt:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(v.Int))
		_, err := w.Write(b[:])
		return err
	case TagLong:
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(v.Long))
		_, err := w.Write(b[:])
		return err
	case TagFloat:
		return writeFloat32(w, v.Float)
	case TagDouble:
		return writeFloat64(w, v.Double)
	case TagByteArray:
		if err := writeInt32(w, int32(len(v.ByteArray))); err != nil {
			return err
		}
		raw := make([]byte, len(v.ByteArray))
		for i, b := range v.ByteArray {
			raw[i] = byte(b)
		}
		_, err := w.Write(raw)
		return err
	case TagString:
		return writeCesu8String(w, v.String)
	case TagList:
		return writeList(w, v.List)
	case TagCompound:
		return writeCompound(w, v.Compound)
	case TagIntArray:
		if err := writeInt32(w, int32(len(v.IntArray))); err != nil {
			return err
		}
		for _, n := range v.IntArray {
			if err := writeInt32(w, n); err != nil {
				return err
			}
		}
		return nil
	case TagLongArray:
		if err := writeInt32(w, int32(len(v.LongArray))); err != nil {
			return err
		}
		for _, n := range v.LongArray {
			if err := writeInt64(w, n); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrUnknownTag
	}
}

func writeList(w io.Writer, l List) error {
	elemTag := l.ElementTag
	if len(l.Values) == 0 {
		elemTag = TagEnd
	}
	for _, v := range l.Values {
		if v.Tag != elemTag {
			return ErrListTypeMismatch
		}
	}
	if err := writeTagByte(w, elemTag); err != nil {
		return err
	}
	if err := writeInt32(w, int32(len(l.Values))); err != nil {
		return err
	}
	for _, v := range l.Values {
		if err := writeBody(w, v); err != nil {
			return err
		}
	}
	return nil
}

func writeCompound(w io.Writer, c Compound) error {
	var err error
	c.Range(func(name string, v Value) {
		if err != nil {
			return
		}
		if werr := writeTagByte(w, v.Tag); werr != nil {
			err = werr
			return
		}
		if werr := writeNameString(w, name); werr != nil {
			err = werr
			return
		}
		err = writeBody(w, v)
	})
	if err != nil {
		return err
	}
	return writeTagByte(w, TagEnd)
}

func readBody(r io.Reader, tag Tag) (Value, error) {
	switch tag {
	case TagEnd:
		return Value{Tag: TagEnd}, nil
	case TagByte:
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return Value{}, err
		}
		return Value{Tag: TagByte, Byte: int8(b[0])}, nil
	case TagShort:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return Value{}, err
		}
		return Value{Tag: TagShort, Short: int16(binary.BigEndian.Uint16(b[:]))}, nil
	case TagInt:
		n, err := readInt32(r)
		return Value{Tag: TagInt, Int: n}, err
	case TagLong:
		n, err := readInt64(r)
		return Value{Tag: TagLong, Long: n}, err
	case TagFloat:
		f, err := readFloat32(r)
		return Value{Tag: TagFloat, Float: f}, err
	case TagDouble:
		f, err := readFloat64(r)
		return Value{Tag: TagDouble, Double: f}, err
	case TagByteArray:
		n, err := readInt32(r)
		if err != nil {
			return Value{}, err
		}
		raw := make([]byte, n)
		if _, err := io.ReadFull(r, raw); err != nil {
			return Value{}, err
		}
		arr := make([]int8, n)
		for i, b := range raw {
			arr[i] = int8(b)
		}
		return Value{Tag: TagByteArray, ByteArray: arr}, nil
	case TagString:
		s, err := readCesu8String(r)
		return Value{Tag: TagString, String: s}, err
	case TagList:
		return readList(r)
	case TagCompound:
		c, err := readCompound(r)
		return Value{Tag: TagCompound, Compound: c}, err
	case TagIntArray:
		n, err := readInt32(r)
		if err != nil {
			return Value{}, err
		}
		arr := make([]int32, n)
		for i := range arr {
			if arr[i], err = readInt32(r); err != nil {
				return Value{}, err
			}
		}
		return Value{Tag: TagIntArray, IntArray: arr}, nil
	case TagLongArray:
		n, err := readInt32(r)
		if err != nil {
			return Value{}, err
		}
		arr := make([]int64, n)
		for i := range arr {
			if arr[i], err = readInt64(r); err != nil {
				return Value{}, err
			}
		}
		return Value{Tag: TagLongArray, LongArray: arr}, nil
	default:
		return Value{}, ErrUnknownTag
	}
}

func readList(r io.Reader) (Value, error) {
	elemTag, err := readTagByte(r)
	if err != nil {
		return Value{}, err
	}
	n, err := readInt32(r)
	if err != nil {
		return Value{}, err
	}
	values := make([]Value, n)
	for i := range values {
		v, err := readBody(r, elemTag)
		if err != nil {
			return Value{}, err
		}
		values[i] = v
	}
	return Value{Tag: TagList, List: List{ElementTag: elemTag, Values: values}}, nil
}

func readCompound(r io.Reader) (Compound, error) {
	c := NewCompound()
	for {
		tag, err := readTagByte(r)
		if err != nil {
			if err == io.EOF {
				return c, ErrMissingTerminator
			}
			return c, err
		}
		if tag == TagEnd {
			return c, nil
		}
		name, err := readNameString(r)
		if err != nil {
			return c, err
		}
		v, err := readBody(r, tag)
		if err != nil {
			return c, err
		}
		c.Set(name, v)
	}
}

func writeInt32(w io.Writer, v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

func readInt32(r io.Reader) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func writeInt64(w io.Writer, v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err := w.Write(b[:])
	return err
}

func readInt64(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}
