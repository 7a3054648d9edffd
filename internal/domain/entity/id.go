package entity

import "github.com/google/uuid"

// ValidID indica si id tiene forma de UUID. Los identificadores malformados
// se rechazan antes de llegar a la base de datos, donde romperían el cast a
// la columna uuid.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
