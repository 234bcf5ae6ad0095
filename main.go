package main

import "github.com/Allison0802/NutriWise-AI-PWA/cmd/nutriwise"

func main() {
	nutriwise.Execute()
}
