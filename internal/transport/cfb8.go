package transport

import "crypto/cipher"

// cfb8 implements AES-128 in CFB8 mode: an 8-bit-wide shift-register stream
// cipher built on a block cipher primitive. The standard library's
// crypto/cipher only exposes full-block-width CFB, so the shift register is
// maintained by hand here, one byte at a time, per spec.md section 8's
// description of CFB8 as "a self-synchronizing, byte-at-a-time stream
// cipher over AES-128".
type cfb8 struct {
	block    cipher.Block
	register []byte
	encrypt  bool
}

func newCFB8(block cipher.Block, iv []byte, encrypt bool) *cfb8 {
	reg := make([]byte, len(iv))
	copy(reg, iv)
	return &cfb8{block: block, register: reg, encrypt: encrypt}
}

// XORKeyStream encrypts or decrypts src into dst, one byte at a time,
// sliding the shift register forward after each byte.
func (c *cfb8) XORKeyStream(dst, src []byte) {
	blockSize := c.block.BlockSize()
	scratch := make([]byte, blockSize)
	for i := range src {
		c.block.Encrypt(scratch, c.register)
		var out byte
		if c.encrypt {
			out = src[i] ^ scratch[0]
			c.shift(out)
		} else {
			out = src[i] ^ scratch[0]
			c.shift(src[i])
		}
		dst[i] = out
	}
}

// shift drops the oldest byte off the front of the register and appends
// the newly produced ciphertext byte at the back.
func (c *cfb8) shift(cipherByte byte) {
	copy(c.register, c.register[1:])
	c.register[len(c.register)-1] = cipherByte
}
