// Package docs registers the Swagger document served under /swagger. Keep it in sync with
// the controller annotations when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/admin/categories": {
			"post": {
				"tags": [
					"Admin - Catalog"
				],
				"summary": "(Admin) Create an exam category",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CategorySummary"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "category",
						"in": "body",
						"required": true,
						"description": "Category data",
						"schema": {
							"$ref": "#/definitions/dto.CreateCategoryRequest"
						}
					}
				]
			}
		},
		"/admin/blocks": {
			"post": {
				"tags": [
					"Admin - Catalog"
				],
				"summary": "(Admin) Create a block inside a category",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BlockDTO"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "block",
						"in": "body",
						"required": true,
						"description": "Block data",
						"schema": {
							"$ref": "#/definitions/dto.CreateBlockRequest"
						}
					}
				]
			}
		},
		"/admin/topics": {
			"post": {
				"tags": [
					"Admin - Catalog"
				],
				"summary": "(Admin) Create a topic inside a block",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TopicDTO"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "topic",
						"in": "body",
						"required": true,
						"description": "Topic data",
						"schema": {
							"$ref": "#/definitions/dto.CreateTopicRequest"
						}
					}
				]
			}
		},
		"/admin/topics/{id}": {
			"delete": {
				"tags": [
					"Admin - Catalog"
				],
				"summary": "(Admin) Delete a topic with its questions and answers",
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Topic ID",
						"type": "integer"
					}
				]
			}
		},
		"/admin/questions": {
			"post": {
				"tags": [
					"Admin - Catalog"
				],
				"summary": "(Admin) Create a question with its answers",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.QuestionDetailDTO"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "question",
						"in": "body",
						"required": true,
						"description": "Question with 2 to 6 answers",
						"schema": {
							"$ref": "#/definitions/dto.CreateQuestionRequest"
						}
					}
				]
			}
		},
		"/admin/exam-templates": {
			"post": {
				"tags": [
					"Admin - Exams"
				],
				"summary": "(Admin) Create an official exam template",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ExamTemplateDTO"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "template",
						"in": "body",
						"required": true,
						"description": "Template data",
						"schema": {
							"$ref": "#/definitions/dto.CreateExamTemplateRequest"
						}
					}
				]
			}
		},
		"/admin/posts": {
			"post": {
				"tags": [
					"Admin - Blog"
				],
				"summary": "(Admin) Create a blog post",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PostDTO"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "post",
						"in": "body",
						"required": true,
						"description": "Post data",
						"schema": {
							"$ref": "#/definitions/dto.CreatePostRequest"
						}
					}
				]
			}
		},
		"/admin/posts/{id}": {
			"patch": {
				"tags": [
					"Admin - Blog"
				],
				"summary": "(Admin) Update a blog post",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PostDTO"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Post ID",
						"type": "integer"
					},
					{
						"name": "post",
						"in": "body",
						"required": true,
						"description": "Fields to change",
						"schema": {
							"$ref": "#/definitions/dto.UpdatePostRequest"
						}
					}
				]
			}
		},
		"/exams/import": {
			"post": {
				"tags": [
					"Admin - Import"
				],
				"summary": "Import an official exam CSV",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ImportResult"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "X-Import-Key",
						"in": "header",
						"required": false,
						"description": "Import key",
						"type": "string"
					},
					{
						"name": "file",
						"in": "formData",
						"required": true,
						"description": "CSV file",
						"type": "file"
					},
					{
						"name": "category",
						"in": "formData",
						"required": true,
						"description": "Category slug or name",
						"type": "string"
					}
				]
			}
		},
		"/auth/register": {
			"post": {
				"tags": [
					"Accounts"
				],
				"summary": "Create an account",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserDTO"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "user",
						"in": "body",
						"required": true,
						"description": "Registration data",
						"schema": {
							"$ref": "#/definitions/dto.RegisterRequest"
						}
					}
				]
			}
		},
		"/auth/verify": {
			"post": {
				"tags": [
					"Accounts"
				],
				"summary": "Activate an account with the emailed code",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "verification",
						"in": "body",
						"required": true,
						"description": "Email and code",
						"schema": {
							"$ref": "#/definitions/dto.VerifyEmailRequest"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"Accounts"
				],
				"summary": "Obtain an access token",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TokenResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "credentials",
						"in": "body",
						"required": true,
						"description": "Email and password",
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				]
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"Accounts"
				],
				"summary": "Current user profile",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.UserDTO"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/auth/password-reset": {
			"post": {
				"tags": [
					"Accounts"
				],
				"summary": "Email a password reset link",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "Email",
						"schema": {
							"$ref": "#/definitions/dto.PasswordResetRequest"
						}
					}
				]
			}
		},
		"/auth/password-reset/confirm": {
			"post": {
				"tags": [
					"Accounts"
				],
				"summary": "Set a new password with a reset token",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"description": "uid, token and new password",
						"schema": {
							"$ref": "#/definitions/dto.PasswordResetConfirmRequest"
						}
					}
				]
			}
		},
		"/contact": {
			"post": {
				"tags": [
					"Contact"
				],
				"summary": "Send a message through the contact form",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"502": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "message",
						"in": "body",
						"required": true,
						"description": "Contact message",
						"schema": {
							"$ref": "#/definitions/dto.ContactRequest"
						}
					}
				]
			}
		},
		"/billing/checkout": {
			"post": {
				"tags": [
					"Billing"
				],
				"summary": "Start a Stripe checkout for a subscription plan",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CheckoutResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"502": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "checkout",
						"in": "body",
						"required": true,
						"description": "Plan",
						"schema": {
							"$ref": "#/definitions/dto.CheckoutRequest"
						}
					}
				]
			}
		},
		"/billing/webhook": {
			"post": {
				"tags": [
					"Billing"
				],
				"summary": "Stripe webhook receiver",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.MessageResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "Stripe-Signature",
						"in": "header",
						"required": true,
						"description": "Stripe signature",
						"type": "string"
					}
				]
			}
		},
		"/categories": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "List exam categories",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.CategorySummary"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/categories/{slug}": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "Get a category with its blocks and topics",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CategoryDetail"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"description": "Category slug",
						"type": "string"
					}
				]
			}
		},
		"/blocks": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "List blocks",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.BlockDTO"
							}
						}
					}
				},
				"parameters": [
					{
						"name": "category",
						"in": "query",
						"required": false,
						"description": "Category slug",
						"type": "string"
					}
				]
			}
		},
		"/topics": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "List topics",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.TopicDTO"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "category",
						"in": "query",
						"required": false,
						"description": "Category slug",
						"type": "string"
					},
					{
						"name": "block",
						"in": "query",
						"required": false,
						"description": "Block number",
						"type": "integer"
					}
				]
			}
		},
		"/topics/{slug}": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "Get a topic",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TopicDTO"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"description": "Topic slug",
						"type": "string"
					}
				]
			}
		},
		"/topics/{slug}/questions": {
			"get": {
				"tags": [
					"Questions"
				],
				"summary": "Questions for a topic",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TopicQuestionsResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"description": "Topic slug",
						"type": "string"
					}
				]
			}
		},
		"/questions/details": {
			"post": {
				"tags": [
					"Questions"
				],
				"summary": "Questions by id, without the correct answer flag",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.QuestionDTO"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "ids",
						"in": "body",
						"required": true,
						"description": "Question ids",
						"schema": {
							"$ref": "#/definitions/dto.QuestionIDsRequest"
						}
					}
				]
			}
		},
		"/questions/review": {
			"post": {
				"tags": [
					"Questions"
				],
				"summary": "Questions by id with correct answers and justifications",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.QuestionDetailDTO"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "ids",
						"in": "body",
						"required": true,
						"description": "Question ids",
						"schema": {
							"$ref": "#/definitions/dto.QuestionIDsRequest"
						}
					}
				]
			}
		},
		"/questions/demo": {
			"get": {
				"tags": [
					"Questions"
				],
				"summary": "Random demo questions",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.QuestionDTO"
							}
						}
					}
				},
				"parameters": [
					{
						"name": "n",
						"in": "query",
						"required": false,
						"description": "Number of questions (1-15)",
						"type": "integer"
					}
				]
			}
		},
		"/questions/{id}/explanation": {
			"get": {
				"tags": [
					"Questions"
				],
				"summary": "Explanation of the correct answer",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ExplanationResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"502": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Question ID",
						"type": "integer"
					}
				]
			}
		},
		"/exam-templates": {
			"get": {
				"tags": [
					"Exams"
				],
				"summary": "List active official exam templates",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ExamTemplateDTO"
							}
						}
					}
				},
				"parameters": [
					{
						"name": "category",
						"in": "query",
						"required": false,
						"description": "Category slug",
						"type": "string"
					}
				]
			}
		},
		"/exam-templates/{slug}": {
			"get": {
				"tags": [
					"Exams"
				],
				"summary": "Get an exam template",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ExamTemplateDTO"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"description": "Template slug",
						"type": "string"
					}
				]
			}
		},
		"/exam-templates/{slug}/start": {
			"post": {
				"tags": [
					"Exams"
				],
				"summary": "Start a mock exam from a template",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.StartExamResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"description": "Template slug",
						"type": "string"
					},
					{
						"name": "overrides",
						"in": "body",
						"required": false,
						"description": "n1, n2, shuffle and minutes overrides",
						"schema": {
							"$ref": "#/definitions/dto.StartExamRequest"
						}
					}
				]
			}
		},
		"/posts": {
			"get": {
				"tags": [
					"Blog"
				],
				"summary": "List published blog posts, newest first",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.PostDTO"
							}
						}
					}
				}
			}
		},
		"/posts/{slug}": {
			"get": {
				"tags": [
					"Blog"
				],
				"summary": "Get a published blog post",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PostDTO"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"name": "slug",
						"in": "path",
						"required": true,
						"description": "Post slug",
						"type": "string"
					}
				]
			}
		},
		"/sessions": {
			"post": {
				"tags": [
					"Sessions"
				],
				"summary": "Start a test session",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "session",
						"in": "body",
						"required": true,
						"description": "Session data",
						"schema": {
							"$ref": "#/definitions/dto.CreateSessionRequest"
						}
					}
				]
			},
			"get": {
				"tags": [
					"Sessions"
				],
				"summary": "List own sessions, newest first",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.SessionResponse"
							}
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "pending",
						"in": "query",
						"required": false,
						"description": "Only in_progress or abandoned",
						"type": "boolean"
					},
					{
						"name": "type",
						"in": "query",
						"required": false,
						"description": "topic, review or exam",
						"type": "string"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Maximum number of sessions",
						"type": "integer"
					}
				]
			}
		},
		"/sessions/{id}": {
			"get": {
				"tags": [
					"Sessions"
				],
				"summary": "Get one of the caller's sessions",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Session UUID",
						"type": "string"
					}
				]
			},
			"patch": {
				"tags": [
					"Sessions"
				],
				"summary": "Save session progress",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Session UUID",
						"type": "string"
					},
					{
						"name": "session",
						"in": "body",
						"required": true,
						"description": "Fields to change",
						"schema": {
							"$ref": "#/definitions/dto.UpdateSessionRequest"
						}
					}
				]
			}
		},
		"/sessions/{id}/complete": {
			"post": {
				"tags": [
					"Sessions"
				],
				"summary": "Finish and score a session",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CompleteSessionResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Session UUID",
						"type": "string"
					}
				]
			}
		},
		"/results": {
			"get": {
				"tags": [
					"Results"
				],
				"summary": "List own results, newest first",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ResultDTO"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"Results"
				],
				"summary": "Record a finished test",
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ResultDTO"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "result",
						"in": "body",
						"required": true,
						"description": "topic_id or topic_slug, correct and total",
						"schema": {
							"$ref": "#/definitions/dto.CreateResultRequest"
						}
					}
				]
			}
		},
		"/stats": {
			"get": {
				"tags": [
					"Stats"
				],
				"summary": "Personal statistics",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.StatsResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/stats/reinforcement": {
			"get": {
				"tags": [
					"Stats"
				],
				"summary": "Topics to master, review and deepen",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ReinforcementResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/ranking/weekly": {
			"get": {
				"tags": [
					"Stats"
				],
				"summary": "Leaderboard for the current week",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.RankingResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"dto.BlockDTO": {
			"type": "object"
		},
		"dto.CategoryDetail": {
			"type": "object"
		},
		"dto.CategorySummary": {
			"type": "object"
		},
		"dto.CheckoutRequest": {
			"type": "object"
		},
		"dto.CheckoutResponse": {
			"type": "object"
		},
		"dto.CompleteSessionResponse": {
			"type": "object"
		},
		"dto.ContactRequest": {
			"type": "object"
		},
		"dto.CreateBlockRequest": {
			"type": "object"
		},
		"dto.CreateCategoryRequest": {
			"type": "object"
		},
		"dto.CreateExamTemplateRequest": {
			"type": "object"
		},
		"dto.CreatePostRequest": {
			"type": "object"
		},
		"dto.CreateQuestionRequest": {
			"type": "object"
		},
		"dto.CreateResultRequest": {
			"type": "object"
		},
		"dto.CreateSessionRequest": {
			"type": "object"
		},
		"dto.CreateTopicRequest": {
			"type": "object"
		},
		"dto.ErrorResponse": {
			"type": "object"
		},
		"dto.ExamTemplateDTO": {
			"type": "object"
		},
		"dto.ExplanationResponse": {
			"type": "object"
		},
		"dto.ImportResult": {
			"type": "object"
		},
		"dto.LoginRequest": {
			"type": "object"
		},
		"dto.MessageResponse": {
			"type": "object"
		},
		"dto.PasswordResetConfirmRequest": {
			"type": "object"
		},
		"dto.PasswordResetRequest": {
			"type": "object"
		},
		"dto.PostDTO": {
			"type": "object"
		},
		"dto.QuestionDTO": {
			"type": "object"
		},
		"dto.QuestionDetailDTO": {
			"type": "object"
		},
		"dto.QuestionIDsRequest": {
			"type": "object"
		},
		"dto.RankingResponse": {
			"type": "object"
		},
		"dto.RegisterRequest": {
			"type": "object"
		},
		"dto.ReinforcementResponse": {
			"type": "object"
		},
		"dto.ResultDTO": {
			"type": "object"
		},
		"dto.SessionResponse": {
			"type": "object"
		},
		"dto.StartExamRequest": {
			"type": "object"
		},
		"dto.StartExamResponse": {
			"type": "object"
		},
		"dto.StatsResponse": {
			"type": "object"
		},
		"dto.TokenResponse": {
			"type": "object"
		},
		"dto.TopicDTO": {
			"type": "object"
		},
		"dto.TopicQuestionsResponse": {
			"type": "object"
		},
		"dto.UpdatePostRequest": {
			"type": "object"
		},
		"dto.UpdateSessionRequest": {
			"type": "object"
		},
		"dto.UserDTO": {
			"type": "object"
		},
		"dto.VerifyEmailRequest": {
			"type": "object"
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Oposiciones Test API",
	Description:      "Backend for exam preparation: catalog, question banks, test sessions, statistics and subscriptions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
