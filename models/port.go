package models

// Port is a transit node in the transport network. The name doubles as the
// graph addressing key and must be unique within a computation run.
type Port struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	InGraphType string   `json:"in_graph_type"`
	Capacity    float64  `json:"capacity"`
	PortType    PortType `json:"port_type"`
}
