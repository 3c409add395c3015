package vertex

import "strconv"

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// IndexToLabel returns the auto-generated name for the vertex at index:
// "a".."z" for 0..25, then "1", "2", ... from 26 on. Negative indexes have no
// name and yield "".
func IndexToLabel(index int) string {
	switch {
	case index < 0:
		return ""
	case index >= len(alphabet):
		return strconv.Itoa(index - len(alphabet) + 1)
	default:
		return alphabet[index : index+1]
	}
}
