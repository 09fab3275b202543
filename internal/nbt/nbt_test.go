package nbt

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"
)

// helloWorldFixture is the canonical "hello world.nbt" test file shared
// across NBT implementations: TAG_Compound("hello world") { TAG_String("name"): "Bananrama" }.
const helloWorldFixtureHex = "0a000b68656c6c6f20776f726c64" +
	"0800046e616d650009" + "42616e616e72616d61" + "00"

func TestHelloWorldFixture(t *testing.T) {
	raw, err := hex.DecodeString(helloWorldFixtureHex)
	if err != nil {
		t.Fatalf("bad test hex: %v", err)
	}
	n, err := ReadNamed(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n.Name != "hello world" {
		t.Fatalf("got name %q want %q", n.Name, "hello world")
	}
	v, ok := n.Value.Compound.Get("name")
	if !ok || v.Tag != TagString || v.String != "Bananrama" {
		t.Fatalf("got %+v, want name=Bananrama", n.Value.Compound)
	}

	// decode -> re-encode -> decode must recover value equality, per
	// spec.md section 4.2 and the "Compound terminator" open question.
	var buf bytes.Buffer
	if err := WriteNamed(&buf, n); err != nil {
		t.Fatalf("encode: %v", err)
	}
	n2, err := ReadNamed(&buf)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if n2.Name != n.Name || !n2.Value.Equal(n.Value) {
		t.Fatalf("round trip mismatch: %+v != %+v", n2, n)
	}
}

// bigTestFixture reconstructs the shape of the widely used "bigtest.nbt"
// test document: nested compounds, a list of ten compounds, and a 1000
// element byte array computed by (n*n*255+n*7)%100.
func bigTestFixture() Named {
	byteArray := make([]int8, 1000)
	for n := range byteArray {
		byteArray[n] = int8((n*n*255 + n*7) % 100)
	}

	nested := NewCompound()
	ham := NewCompound()
	ham.Set("name", Value{Tag: TagString, String: "Hampus"})
	ham.Set("value", Value{Tag: TagFloat, Float: 0.75})
	egg := NewCompound()
	egg.Set("name", Value{Tag: TagString, String: "Eggbert"})
	egg.Set("value", Value{Tag: TagFloat, Float: 0.5})
	nested.Set("ham", Value{Tag: TagCompound, Compound: ham})
	nested.Set("egg", Value{Tag: TagCompound, Compound: egg})

	listCompounds := make([]Value, 10)
	for i := range listCompounds {
		c := NewCompound()
		c.Set("name", Value{Tag: TagString, String: "Compound tag #0"})
		c.Set("created-on", Value{Tag: TagLong, Long: int64(1264099775885 + i)})
		listCompounds[i] = Value{Tag: TagCompound, Compound: c}
	}

	root := NewCompound()
	root.Set("nested compound test", Value{Tag: TagCompound, Compound: nested})
	root.Set("intTest", Value{Tag: TagInt, Int: 2147483647})
	root.Set("byteTest", Value{Tag: TagByte, Byte: 127})
	root.Set("stringTest", Value{Tag: TagString, String: "HELLO WORLD THIS IS A TEST STRING ÅÄÖ!"})
	root.Set("listTest (long)", Value{Tag: TagList, List: List{
		ElementTag: TagLong,
		Values: []Value{
			{Tag: TagLong, Long: 11}, {Tag: TagLong, Long: 12}, {Tag: TagLong, Long: 13},
			{Tag: TagLong, Long: 14}, {Tag: TagLong, Long: 15},
		},
	}})
	root.Set("doubleTest", Value{Tag: TagDouble, Double: 0.49312871321823148})
	root.Set("floatTest", Value{Tag: TagFloat, Float: 0.49823147058486938})
	root.Set("longTest", Value{Tag: TagLong, Long: 9223372036854775807})
	root.Set("listTest (compound)", Value{Tag: TagList, List: List{ElementTag: TagCompound, Values: listCompounds}})
	root.Set("byteArrayTest (the first 1000 values of (n*n*255+n*7)%100, starting with n=0 (0, 62, 34, 16, 8, ...))",
		Value{Tag: TagByteArray, ByteArray: byteArray})
	root.Set("shortTest", Value{Tag: TagShort, Short: 32767})

	return Named{Name: "Level", Value: Value{Tag: TagCompound, Compound: root}}
}

func TestBigTestFixtureRoundTrip(t *testing.T) {
	n := bigTestFixture()

	var buf bytes.Buffer
	if err := WriteNamed(&buf, n); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := ReadNamed(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Name != n.Name || !decoded.Value.Equal(n.Value) {
		t.Fatal("decode(encode(bigtest)) != bigtest")
	}

	// second hop: re-encode the decoded value and decode again.
	var buf2 bytes.Buffer
	if err := WriteNamed(&buf2, decoded); err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	decoded2, err := ReadNamed(&buf2)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if !decoded2.Value.Equal(n.Value) {
		t.Fatal("decode-re-encode-decode did not recover value equality")
	}
}

func TestListTypeMismatch(t *testing.T) {
	l := List{ElementTag: TagInt, Values: []Value{
		{Tag: TagInt, Int: 1},
		{Tag: TagString, String: "oops"},
	}}
	var buf bytes.Buffer
	err := writeList(&buf, l)
	if err != ErrListTypeMismatch {
		t.Fatalf("got %v, want ErrListTypeMismatch", err)
	}
}

func TestEmptyListSerializesAsEndTag(t *testing.T) {
	l := List{ElementTag: TagCompound}
	var buf bytes.Buffer
	if err := writeList(&buf, l); err != nil {
		t.Fatal(err)
	}
	if buf.Bytes()[0] != byte(TagEnd) {
		t.Fatalf("empty list element tag = %x, want End", buf.Bytes()[0])
	}
}

func TestCompoundMissingTerminator(t *testing.T) {
	// A compound with one Byte entry but no trailing End tag.
	var buf bytes.Buffer
	buf.WriteByte(byte(TagByte))
	buf.Write([]byte{0x00, 0x01, 'x'})
	buf.WriteByte(0x07)
	if _, err := readCompound(&buf); err != ErrMissingTerminator {
		t.Fatalf("got %v, want ErrMissingTerminator", err)
	}
}

func TestCesu8SurrogatePairRoundTrip(t *testing.T) {
	// U+1F600 GRINNING FACE requires a UTF-16 surrogate pair in CESU-8.
	s := "before\U0001F600after"
	encoded := utf8ToCesu8(s)
	// A true UTF-8 encoder would use 4 bytes for the emoji; CESU-8 uses
	// two 3-byte surrogate sequences (6 bytes) instead.
	if bytes.Contains(encoded, []byte{0xF0}) {
		t.Fatal("CESU-8 output should never contain a 4-byte UTF-8 lead byte")
	}
	if got := cesu8ToUTF8(encoded); got != s {
		t.Fatalf("got %q want %q", got, s)
	}
}

func TestValueRoundTripFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v := randomValue(rng, 0)
		named := Named{Name: "root", Value: v}
		var buf bytes.Buffer
		if err := WriteNamed(&buf, named); err != nil {
			t.Fatalf("encode %+v: %v", v, err)
		}
		got, err := ReadNamed(&buf)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !got.Value.Equal(v) {
			t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got.Value, v)
		}
	}
}

func randomValue(rng *rand.Rand, depth int) Value {
	choices := []Tag{TagByte, TagShort, TagInt, TagLong, TagFloat, TagDouble, TagByteArray, TagString, TagIntArray, TagLongArray}
	if depth < 3 {
		choices = append(choices, TagCompound, TagList)
	}
	tag := choices[rng.Intn(len(choices))]
	switch tag {
	case TagByte:
		return Value{Tag: tag, Byte: int8(rng.Intn(256) - 128)}
	case TagShort:
		return Value{Tag: tag, Short: int16(rng.Intn(65536) - 32768)}
	case TagInt:
		return Value{Tag: tag, Int: rng.Int31()}
	case TagLong:
		return Value{Tag: tag, Long: rng.Int63()}
	case TagFloat:
		return Value{Tag: tag, Float: rng.Float32()}
	case TagDouble:
		return Value{Tag: tag, Double: rng.Float64()}
	case TagByteArray:
		n := rng.Intn(10)
		arr := make([]int8, n)
		for i := range arr {
			arr[i] = int8(rng.Intn(256) - 128)
		}
		return Value{Tag: tag, ByteArray: arr}
	case TagIntArray:
		n := rng.Intn(10)
		arr := make([]int32, n)
		for i := range arr {
			arr[i] = rng.Int31()
		}
		return Value{Tag: tag, IntArray: arr}
	case TagLongArray:
		n := rng.Intn(10)
		arr := make([]int64, n)
		for i := range arr {
			arr[i] = rng.Int63()
		}
		return Value{Tag: tag, LongArray: arr}
	case TagString:
		return Value{Tag: tag, String: "s" + hex.EncodeToString([]byte{byte(rng.Intn(256))})}
	case TagCompound:
		c := NewCompound()
		for i := 0; i < rng.Intn(4); i++ {
			c.Set("k"+hex.EncodeToString([]byte{byte(i)}), randomValue(rng, depth+1))
		}
		return Value{Tag: tag, Compound: c}
	case TagList:
		elem := []Tag{TagByte, TagInt, TagString}[rng.Intn(3)]
		n := rng.Intn(4)
		values := make([]Value, n)
		for i := range values {
			values[i] = zeroedForTag(elem)
		}
		return Value{Tag: tag, List: List{ElementTag: elem, Values: values}}
	}
	return Value{Tag: TagEnd}
}

func zeroedForTag(tag Tag) Value {
	switch tag {
	case TagByte:
		return Value{Tag: tag, Byte: 5}
	case TagInt:
		return Value{Tag: tag, Int: 12345}
	case TagString:
		return Value{Tag: tag, String: "x"}
	default:
		return Value{Tag: tag}
	}
}
