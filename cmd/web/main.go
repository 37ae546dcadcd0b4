package main

import "influmatch_backend/internal/app"

func main() {
	app.Run()
}
