package hepquery

import (
	"regexp"
	"strings"
)

// ColumnsForPhysicsObjects returns the subset of columns which form part
// of the requested physics objects. A column qualifies for an object if it
// is the object's count column (nElectron) or one of its properties
// (Electron_pt). Order is preserved and no column is returned twice.
// Object names are escaped before being spliced into the matching
// expression, so names containing metacharacters match literally.
func ColumnsForPhysicsObjects(physicsObjects []string, columns []string) []string {
	if len(physicsObjects) == 0 {
		return nil
	}
	alternatives := make([]string, 0, len(physicsObjects)*2)
	for _, obj := range physicsObjects {
		quoted := regexp.QuoteMeta(obj)
		alternatives = append(alternatives, quoted+"_.*", "n"+quoted)
	}
	r := regexp.MustCompile("^(" + strings.Join(alternatives, "|") + ")$")

	var res []string
	for _, col := range columns {
		if r.MatchString(col) {
			res = append(res, col)
		}
	}
	return res
}

// CountColumnForPhysicsObject generates the column name that represents
// the count property for a physics object, e.g. nElectron.
func CountColumnForPhysicsObject(physicsObject string) string {
	return "n" + physicsObject
}
