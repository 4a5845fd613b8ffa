package splitter

// Part describes one fixed-size slice of the source file.
type Part struct {
	Index  int64
	Offset int64
	Size   int64
}

// NumParts returns how many parts a file of fileSize bytes splits into at
// the given byte limit. A zero-byte file produces no parts.
func NumParts(fileSize, byteLimit int64) int64 {
	return (fileSize + byteLimit - 1) / byteLimit
}

// PartSize returns the size of part i. Every part is byteLimit bytes except
// the last, which holds whatever remains.
func PartSize(fileSize, byteLimit, i int64) int64 {
	remaining := fileSize - i*byteLimit
	if remaining < byteLimit {
		return remaining
	}
	return byteLimit
}

// Parts enumerates the parts of a file in index order.
func Parts(fileSize, byteLimit int64) []Part {
	numParts := NumParts(fileSize, byteLimit)
	parts := make([]Part, numParts)
	for i := int64(0); i < numParts; i++ {
		parts[i] = Part{
			Index:  i,
			Offset: i * byteLimit,
			Size:   PartSize(fileSize, byteLimit, i),
		}
	}
	return parts
}

// PartOffsets returns the start offset of each part.
func PartOffsets(fileSize, byteLimit int64) []int64 {
	offsets := make([]int64, NumParts(fileSize, byteLimit))
	for i := 1; i < len(offsets); i++ {
		offsets[i] = offsets[i-1] + byteLimit
	}
	return offsets
}
