package main

import (
	"newsblog/config"
	"newsblog/router"
)

func main() {
	config.InitConfig()

	r := router.SetupRouter()

	port := config.AppConfig.App.Port
	if port == "" {
		port = ":3000"
	}
	r.Run(port)
}
