// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the corb3d server.
//
// All Msg* constants are written into the {"message": "..."} body of HTTP
// responses. The browser UI shows them verbatim, so they are in Portuguese.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "Dados inválidos."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Erro interno do servidor."

	// MsgNotAuthenticated is returned when the request carries no valid session.
	MsgNotAuthenticated = "Não autenticado."

	// MsgInvalidCredentials is returned on a failed login.
	MsgInvalidCredentials = "Usuário ou senha incorretos."

	// MsgCredentialsRequired is returned when username or password is blank.
	MsgCredentialsRequired = "Usuário e senha são obrigatórios."

	// MsgUsernameRequired is returned by the open lookups keyed by username.
	MsgUsernameRequired = "Informe o nome de usuário."

	// MsgForbidden is returned when the access policy refuses the operation.
	MsgForbidden = "Acesso restrito ao administrador."

	// MsgMasterAdminOnly is returned by user management to anyone but the master admin.
	MsgMasterAdminOnly = "Acesso restrito ao administrador master."

	// MsgUserNotFound is returned when the named or addressed user does not exist.
	MsgUserNotFound = "Usuário não encontrado."

	// MsgUserAlreadyExists is returned when the requested username is taken.
	MsgUserAlreadyExists = "Este usuário já existe."

	// MsgWeakPassword is returned when a new password is shorter than allowed.
	MsgWeakPassword = "A senha deve ter pelo menos 6 caracteres."

	// MsgIdentityProofRequired is returned when an admin password reset or a
	// user creation lacks CPF and birthdate.
	MsgIdentityProofRequired = "CPF e data de nascimento são obrigatórios."

	// MsgIdentityProofMismatch is returned when the supplied CPF or birthdate
	// does not match the stored values.
	MsgIdentityProofMismatch = "CPF ou data de nascimento incorretos."

	// MsgCurrentPasswordRequired is returned on a self password change without
	// the current password.
	MsgCurrentPasswordRequired = "Informe a senha atual."

	// MsgWrongCurrentPassword is returned when the current password does not verify.
	MsgWrongCurrentPassword = "Senha atual incorreta."

	// MsgCannotDeleteSelf is returned when the master admin tries to delete
	// its own account.
	MsgCannotDeleteSelf = "Você não pode excluir sua própria conta."

	// MsgNotFound is returned when the addressed row does not exist in the
	// caller's scope.
	MsgNotFound = "Registro não encontrado."

	// MsgDuplicateTaxID is returned when a client with the same CPF/CNPJ
	// already exists for the owner.
	MsgDuplicateTaxID = "Já existe um cliente com este CPF/CNPJ."

	// MsgDuplicateStockItem is returned when the owner already has a roll of
	// the same material, brand and color.
	MsgDuplicateStockItem = "Já existe um item de estoque com este material, marca e cor."

	// MsgEmployeeAlreadyLinked is returned when a user is already linked to
	// another employee.
	MsgEmployeeAlreadyLinked = "Este usuário já está vinculado a outro vendedor."

	// MsgUnknownEmployee is returned when a quote names an employee outside
	// the caller's scope.
	MsgUnknownEmployee = "Vendedor não encontrado."

	// MsgInvalidPeriod is returned by the commission report for a malformed
	// year or month.
	MsgInvalidPeriod = "Período inválido."

	// MsgInvalidPostalCode is returned when a CEP does not have 8 digits.
	MsgInvalidPostalCode = "CEP inválido."

	// MsgPostalCodeUnavailable is returned when every CEP provider failed.
	MsgPostalCodeUnavailable = "Erro ao buscar CEP."

	// MsgNoAdminFound is returned by the admin contact lookup when no admin exists.
	MsgNoAdminFound = "Nenhum administrador encontrado."

	// MsgMethodNotAllowed is returned for unsupported HTTP methods.
	MsgMethodNotAllowed = "Método não permitido."
)
