package main

import "github.com/hanjaplatform/hanja-api/cmd"

// @title           Hanja Platform API
// @version         1.0.0
// @description     Punctuation, named entity annotation and translation of classical Chinese (Hanja) texts, with per-user history.
// @contact.name    API Support
// @contact.url     https://github.com/hanjaplatform/hanja-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Session token, sent as "Bearer <token>"
func main() {
	cmd.Execute()
}
