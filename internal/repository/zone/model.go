package zone

type ZoneDB struct {
	ID      int64
	Name    string
	Polygon []byte
}
