package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "API Gestión Escolar",
        "description": "Gestión de profesores, horarios, asistencias y roles",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Autenticación y sesiones"},
        {"name": "Profesores", "description": "Alta, baja y modificación de profesores"},
        {"name": "Materias", "description": "Catálogo de materias y cursos"},
        {"name": "Horarios", "description": "Horarios semanales por curso"},
        {"name": "Asistencias", "description": "Asistencia diaria de profesores"},
        {"name": "Admin", "description": "Gestión de usuarios y roles"},
        {"name": "Exports", "description": "Descargas CSV, XLSX y PDF"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Autenticar un usuario",
                "responses": {
                    "200": {"description": "Tokens emitidos"},
                    "401": {"description": "Credenciales inválidas"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotar el refresh token",
                "responses": {
                    "200": {"description": "Tokens renovados"},
                    "401": {"description": "Token expirado o revocado"}
                }
            }
        },
        "/auth/role": {
            "post": {
                "tags": ["Auth"],
                "summary": "Resolver el rol de un usuario",
                "responses": {
                    "200": {"description": "Rol resuelto"},
                    "400": {"description": "Falta userId"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revocar el refresh token actual",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Sesión cerrada"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Perfil del usuario autenticado",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Perfil con rol"}
                }
            }
        },
        "/profesores": {
            "get": {
                "tags": ["Profesores"],
                "summary": "Listar profesores activos",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Listado con materias asignadas"}
                }
            },
            "post": {
                "tags": ["Profesores"],
                "summary": "Registrar un profesor",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Profesor creado"},
                    "400": {"description": "Datos inválidos o DNI duplicado"}
                }
            }
        },
        "/profesores/{id}": {
            "get": {
                "tags": ["Profesores"],
                "summary": "Obtener un profesor activo",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Profesor"},
                    "404": {"description": "Profesor no encontrado"}
                }
            },
            "put": {
                "tags": ["Profesores"],
                "summary": "Actualizar un profesor",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Profesor actualizado"},
                    "400": {"description": "Datos inválidos o DNI duplicado"},
                    "404": {"description": "Profesor no encontrado"}
                }
            },
            "delete": {
                "tags": ["Profesores"],
                "summary": "Dar de baja un profesor",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Profesor desactivado"},
                    "404": {"description": "Profesor no encontrado"}
                }
            }
        },
        "/materias": {
            "get": {
                "tags": ["Materias"],
                "summary": "Listar materias con su curso",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Listado de materias"}
                }
            }
        },
        "/cursos": {
            "get": {
                "tags": ["Materias"],
                "summary": "Listar cursos",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Listado de cursos"}
                }
            }
        },
        "/horarios": {
            "get": {
                "tags": ["Horarios"],
                "summary": "Listar horarios",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Listado de horarios"}
                }
            },
            "post": {
                "tags": ["Horarios"],
                "summary": "Agregar un horario",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Horario creado"},
                    "400": {"description": "Día u hora inválidos"}
                }
            }
        },
        "/horarios/{id}": {
            "delete": {
                "tags": ["Horarios"],
                "summary": "Eliminar un horario",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Horario eliminado"},
                    "404": {"description": "Horario no encontrado"}
                }
            }
        },
        "/asistencias": {
            "get": {
                "tags": ["Asistencias"],
                "summary": "Vista diaria de asistencia",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Registros del día"},
                    "400": {"description": "Fecha inválida"}
                }
            },
            "put": {
                "tags": ["Asistencias"],
                "summary": "Reemplazar la asistencia de una fecha",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Asistencia guardada"},
                    "400": {"description": "Fecha o registros inválidos"}
                }
            }
        },
        "/admin/users": {
            "get": {
                "tags": ["Admin"],
                "summary": "Listar usuarios con sus roles",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Listado de usuarios"},
                    "403": {"description": "Solo admin"}
                }
            },
            "put": {
                "tags": ["Admin"],
                "summary": "Asignar un rol a un usuario",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Rol actualizado"},
                    "400": {"description": "Rol inválido o datos faltantes"},
                    "403": {"description": "Solo admin"}
                }
            }
        },
        "/exports/profesores": {
            "get": {
                "tags": ["Exports"],
                "summary": "Exportar el listado de profesores",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Archivo generado"},
                    "400": {"description": "Formato no soportado"}
                }
            }
        },
        "/exports/asistencias": {
            "get": {
                "tags": ["Exports"],
                "summary": "Exportar la asistencia de una fecha",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Archivo generado"},
                    "400": {"description": "Fecha o formato inválidos"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
