package file

import (
	"github.com/tmakinen/partwise/model"
)

// CreateFileNumMap numbers the given media paths for compact storage in
// occurrence records.
func CreateFileNumMap(paths []string) model.FileNumToPath {
	res := make(model.FileNumToPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}
