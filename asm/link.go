package asm

// Resolve overwrites every reference placeholder with the address of its
// label, truncated to 8 bits. It stops at the first undefined label.
func (img *Image) Resolve() (err error) {
	for _, ref := range img.References {
		addr, ok := img.Labels[ref.Label]
		if !ok {
			err = ErrUndefinedLabel(ref.Label)
			return
		}
		img.Code[ref.Offset] = byte(addr)
	}

	return
}
