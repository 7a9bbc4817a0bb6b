package entity

// Classification representa una categoría de vehículos (Sedan, SUV, Truck...).
// El nombre es único por convención; la unicidad se valida en la aplicación, no en el esquema.
type Classification struct {
	ID   int
	Name string
}
