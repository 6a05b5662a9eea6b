package codegen_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/realmgen/realmgen/internal/codegen"
	"github.com/realmgen/realmgen/internal/schema"
)

func Example_usage() {
	s, err := schema.Parse(`
type User {
  id: ID!
  name: String
  friends: [User!]!
}`)
	if err != nil {
		log.Fatal(err)
	}

	gen, err := codegen.DefaultRegistry.Get("swift", codegen.Options{Namespace: "API"})
	if err != nil {
		log.Fatal(err)
	}

	code, err := gen.Generate(s)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(strings.Contains(string(code), "public final class User: Object {"))
	fmt.Println(gen.Language() + gen.FileExtension())
	// Output:
	// true
	// swift.swift
}
