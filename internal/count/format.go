package count

import "strconv"

func formatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
