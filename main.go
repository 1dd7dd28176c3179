package main

import "github.com/geekflex/geekflex-api/cmd"

// @title           GeekFlex API
// @version         1.0.0
// @description     Movie and TV catalog backed by a local TMDB mirror
// @contact.name    API Support
// @contact.url     https://github.com/geekflex/geekflex-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
