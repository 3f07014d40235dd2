// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// recipe client services and screens.
//
// All Msg* constants are human-readable strings shown to the user to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording across the screens.
package app

const (
	// MsgServerUnavailable is shown when the backend cannot be reached
	// (refused connection, DNS failure, timeout).
	MsgServerUnavailable = "Sin conexión o servidor no disponible"

	// MsgFillAllFields is shown when a login or register form has blank
	// required fields.
	MsgFillAllFields = "Completa todos los campos"

	// MsgLoginFailed prefixes backend login errors.
	MsgLoginFailed = "Error al iniciar sesión"

	// MsgRegisterFailed prefixes backend register errors.
	MsgRegisterFailed = "Error al registrarse"

	// MsgEmailTaken is shown when the backend rejects a register request for
	// an e-mail that already has an account.
	MsgEmailTaken = "Este correo ya está registrado. Intenta con otro."

	// MsgInvalidCredentials is shown for a 401 on login.
	MsgInvalidCredentials = "Correo o contraseña incorrectos"

	// MsgSessionExpired is shown for a 401 on any other request.
	MsgSessionExpired = "Tu sesión expiró. Inicia sesión nuevamente"

	// MsgLoginRequired is shown when an anonymous user tries a favorites or
	// comments action.
	MsgLoginRequired = "Debes iniciar sesión para usar favoritos"

	// MsgAdminOnly is shown when a non-admin reaches a recipe mutation.
	MsgAdminOnly = "Solo los administradores pueden gestionar recetas"

	// MsgNotCommentOwner is shown when deleting somebody else's comment.
	MsgNotCommentOwner = "Solo puedes eliminar tus propios comentarios"

	// MsgRecipeNotFound is shown for a 404 on a recipe.
	MsgRecipeNotFound = "Receta no encontrada"

	// MsgRecipesLoadFailed is the inline message of the browse screen.
	MsgRecipesLoadFailed = "No se pudieron cargar las recetas"

	// MsgFavoritesLoadFailed is the inline message of the favorites screen.
	MsgFavoritesLoadFailed = "No se pudieron cargar los favoritos"

	// MsgCommentsLoadFailed is the inline message of the comments panel.
	MsgCommentsLoadFailed = "No se pudieron cargar los comentarios."

	// MsgFavoriteUpdateFailed is shown when a favorite toggle fails.
	MsgFavoriteUpdateFailed = "No se pudo actualizar favoritos"

	// MsgFavoriteAdded and MsgFavoriteRemoved confirm a toggle.
	MsgFavoriteAdded   = "Se guardó en favoritos"
	MsgFavoriteRemoved = "Se quitó de favoritos"

	// MsgCommentPostFailed and MsgCommentDeleteFailed report comment
	// mutations.
	MsgCommentPostFailed   = "No se pudo publicar el comentario."
	MsgCommentDeleteFailed = "No se pudo eliminar el comentario."

	// MsgRecipeSaveFailed prefixes admin create/update errors.
	MsgRecipeSaveFailed = "No se pudo guardar la receta"

	// MsgRecipeDeleteFailed is shown when an admin delete fails.
	MsgRecipeDeleteFailed = "No se pudo eliminar la receta"

	// MsgRecipeCreated and MsgRecipeUpdated confirm admin saves.
	MsgRecipeCreated = "Receta creada"
	MsgRecipeUpdated = "Receta actualizada"

	// MsgOfflineCopy is appended when the browse screen renders the local
	// recipe cache.
	MsgOfflineCopy = "mostrando copia local"
)

// Validation messages of the recipe form, in check order.
const (
	MsgNameRequired        = "El nombre es obligatorio"
	MsgDescriptionRequired = "La descripción es obligatoria"
	MsgInvalidCookTime     = "Tiempo de cocción inválido"
	MsgInvalidServings     = "Porciones inválidas"
	MsgInvalidDifficulty   = "Dificultad inválida"
	MsgIngredientRequired  = "Agrega al menos un ingrediente"
	MsgInstructionRequired = "Agrega al menos un paso"
	MsgCommentRequired     = "El comentario no puede estar vacío"
)
