package bigarray

//go:generate go run ./cmd/bigarraygen -pkg bigarray -name BigArray -out lengths_gen.go
