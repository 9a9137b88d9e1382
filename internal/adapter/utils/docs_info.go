// @title           Document & Clipboard Q&A Assistant API
// @version         1.0
// @description     Upload PDFs, ask a locally hosted model about them, stream answers as text or audio.

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /
// @schemes   http https
package utils

//run redis
//docker run -p 6379:6379 -d redis

//run the model server
//ollama serve && ollama pull llama3.2

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
