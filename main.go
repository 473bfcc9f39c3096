package main

import "school-backend/internal/app"

func main() {
	app.Run()
}
