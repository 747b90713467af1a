package bplist

import "encoding/binary"

// buildBplist assembles a bplist00 document from pre-encoded objects,
// using one-byte offsets and object references. Object i's references are
// the indices passed to the container helpers below.
func buildBplist(top uint64, objects ...[]byte) []byte {
	buf := []byte("bplist00")
	offsets := make([]byte, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, byte(len(buf)))
		buf = append(buf, obj...)
	}
	offsetTableOffset := uint64(len(buf))
	buf = append(buf, offsets...)

	trailer := make([]byte, trailerSize)
	trailer[6] = 1 // offset int size
	trailer[7] = 1 // object ref size
	binary.BigEndian.PutUint64(trailer[8:], uint64(len(objects)))
	binary.BigEndian.PutUint64(trailer[16:], top)
	binary.BigEndian.PutUint64(trailer[24:], offsetTableOffset)
	return append(buf, trailer...)
}

func asciiObj(s string) []byte {
	if len(s) > 14 {
		panic("asciiObj: use longAsciiObj")
	}
	return append([]byte{bpTagASCIIString | byte(len(s))}, s...)
}

func longAsciiObj(s string) []byte {
	obj := []byte{bpTagASCIIString | 0x0F, bpTagInteger | 0x00, byte(len(s))}
	return append(obj, s...)
}

func dataObj(b []byte) []byte {
	if len(b) > 14 {
		panic("dataObj: payload too long for a short count")
	}
	return append([]byte{bpTagData | byte(len(b))}, b...)
}

func dictObj(keyRefs, valueRefs []byte) []byte {
	if len(keyRefs) != len(valueRefs) || len(keyRefs) > 14 {
		panic("dictObj: bad refs")
	}
	obj := []byte{bpTagDictionary | byte(len(keyRefs))}
	obj = append(obj, keyRefs...)
	return append(obj, valueRefs...)
}

func arrayObj(refs ...byte) []byte {
	if len(refs) > 14 {
		panic("arrayObj: too many refs")
	}
	return append([]byte{bpTagArray | byte(len(refs))}, refs...)
}

// singletonDict builds a whole document whose root is {"a": <obj>}.
func singletonDict(obj []byte) []byte {
	return buildBplist(0,
		dictObj([]byte{1}, []byte{2}),
		asciiObj("a"),
		obj,
	)
}
