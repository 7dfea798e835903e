package transactions

// TFFullyCanonicalSig requires a fully canonical signature. It is accepted on
// every transaction type.
const TFFullyCanonicalSig uint32 = 0x80000000

// UniversalFlags are the flag bits every transaction type accepts.
const UniversalFlags = TFFullyCanonicalSig

// URITokenMintFlag is a flag bit of the URITokenMint transaction.
type URITokenMintFlag uint32

const (
	// TFBurnable lets the issuer burn the token even when it does not hold it.
	// The current holder may always burn it.
	TFBurnable URITokenMintFlag = 0x00000001
)

var uriTokenMintFlags = []URITokenMintFlag{TFBurnable}

// URITokenMintFlags is the mask of every declared URITokenMint flag.
func URITokenMintFlags() uint32 {
	var m uint32
	for _, f := range uriTokenMintFlags {
		m |= uint32(f)
	}
	return m
}

func (f URITokenMintFlag) Valid() bool { return f != 0 && uint32(f)&^URITokenMintFlags() == 0 }

// Set reports whether f is set in flags.
func (f URITokenMintFlag) Set(flags uint32) bool { return flags&uint32(f) == uint32(f) }

// CombineFlags ORs flag bits into a Flags value.
func CombineFlags[F ~uint32](flags ...F) uint32 {
	var out uint32
	for _, f := range flags {
		out |= uint32(f)
	}
	return out
}
