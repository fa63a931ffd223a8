package main

import "github.com/Lixetron/job-portal/internal/app"

func main() {
	app.Run()
}
