// @title           jobboard API
// @version         1.0
// @description     API доски вакансий: онбординг работодателей и публичный листинг.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "jobboard_backend/internal/app"

func main() {
	app.Run()
}
