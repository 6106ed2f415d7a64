package tabular

// HashAlgo represents a supported hashing algorithm.
// Use these constants in struct tags: `csv.hash:"sha256"`
type HashAlgo string

const (
	// HashArgon2 uses Argon2id (salted, slow). Each export produces different cells.
	HashArgon2 HashAlgo = "argon2"

	// HashBcrypt uses bcrypt (salted, slow). Each export produces different cells.
	HashBcrypt HashAlgo = "bcrypt"

	// HashSHA256 uses SHA-256 for deterministic fingerprints.
	// Use for joining exports on a pseudonymous key, NOT for passwords.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 uses SHA-512 for deterministic fingerprints.
	HashSHA512 HashAlgo = "sha512"
)

var validHashAlgos = map[HashAlgo]bool{
	HashArgon2: true,
	HashBcrypt: true,
	HashSHA256: true,
	HashSHA512: true,
}

var validMaskTypes = map[MaskType]bool{
	MaskSSN:   true,
	MaskEmail: true,
	MaskPhone: true,
	MaskCard:  true,
	MaskIP:    true,
	MaskUUID:  true,
	MaskIBAN:  true,
	MaskName:  true,
}

// IsValidHashAlgo returns true if the algorithm is a known hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}

// IsValidMaskType returns true if the type is a known mask type.
func IsValidMaskType(mt MaskType) bool {
	return validMaskTypes[mt]
}
