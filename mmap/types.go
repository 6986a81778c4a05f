package mmap

// AccessPattern hints the kernel how mapped pages will be accessed.
type AccessPattern int

const (
	// AccessDefault lets the kernel use its default readahead.
	AccessDefault AccessPattern = iota
	// AccessSequential expects pages to be read in order; the kernel
	// can read ahead aggressively and drop pages behind the cursor.
	AccessSequential
	// AccessRandom expects scattered access; readahead is disabled.
	AccessRandom
	// AccessWillNeed expects the pages soon; the kernel may prefetch.
	AccessWillNeed
	// AccessDontNeed expects the pages not to be touched again soon.
	AccessDontNeed
)

func (p AccessPattern) String() string {
	switch p {
	case AccessDefault:
		return "default"
	case AccessSequential:
		return "sequential"
	case AccessRandom:
		return "random"
	case AccessWillNeed:
		return "willneed"
	case AccessDontNeed:
		return "dontneed"
	default:
		return "unknown"
	}
}
