package model

type Spec struct {
	Info       Info
	Paths      []Path
	Operations []Operation
	Schemas    []NamedSchema
}

type Info struct {
	Title       string
	Description string
	Version     string
}

type Path struct {
	Path       string
	Operations []Operation
}
